package mailer

import "html/template"

// welcomeTmpl is the HTML body for the waitlist welcome email.
var welcomeTmpl = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Welcome to AI Nexus</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: linear-gradient(135deg, #22c55e, #10b981); padding: 30px; text-align: center; border-radius: 10px; margin-bottom: 30px;">
        <h1 style="color: white; margin: 0; font-size: 28px;">Welcome to AI Nexus!</h1>
        <p style="color: white; margin: 10px 0 0 0; font-size: 16px;">The Future of Decentralized AI</p>
    </div>

    <div style="background: #f8f9fa; padding: 30px; border-radius: 10px; text-align: center; margin-bottom: 30px;">
        <h2 style="color: #22c55e; margin: 0 0 10px 0; font-size: 48px;">#{{.Position}}</h2>
        <p style="margin: 0; font-size: 18px; color: #666;">Your position in line</p>
    </div>

    <div style="margin-bottom: 30px;">
        <h3 style="color: #333; margin-bottom: 15px;">Hi {{.FirstName}},</h3>
        <p>Thank you for joining the AI Nexus waitlist! You're now part of an exclusive community of developers, researchers, and innovators who are shaping the future of AI.</p>

        <h4 style="color: #22c55e; margin-top: 25px;">What happens next?</h4>
        <ul style="padding-left: 20px;">
            <li style="margin-bottom: 10px;">We'll keep you updated on our progress with exclusive insights</li>
            <li style="margin-bottom: 10px;">You'll get early access when we launch</li>
            <li style="margin-bottom: 10px;">Access to premium AI models and features</li>
            <li style="margin-bottom: 10px;">Priority support and community access</li>
        </ul>
    </div>

    <div style="background: #f8f9fa; padding: 20px; border-radius: 10px; margin-bottom: 30px;">
        <h4 style="color: #333; margin-top: 0;">Move up the waitlist faster!</h4>
        <p style="margin-bottom: 15px;">Share AI Nexus with friends and colleagues to improve your position:</p>
        <div style="text-align: center;">
            <a href="https://ainexus.com/waitlist?ref={{.Email}}" style="background: #22c55e; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block; margin: 5px;">Share with Friends</a>
        </div>
    </div>

    <div style="text-align: center; color: #666; font-size: 14px; border-top: 1px solid #eee; padding-top: 20px;">
        <p>AI Nexus - The Decentralized AI Marketplace</p>
        <p>
            <a href="https://ainexus.com" style="color: #22c55e;">Visit our website</a> |
            <a href="mailto:support@ainexus.com" style="color: #22c55e;">Contact support</a>
        </p>
    </div>
</body>
</html>`))

// invitationTmpl is the HTML body for the early-access invitation email.
var invitationTmpl = template.Must(template.New("invitation").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>You're Invited to AI Nexus!</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: linear-gradient(135deg, #22c55e, #10b981); padding: 30px; text-align: center; border-radius: 10px; margin-bottom: 30px;">
        <h1 style="color: white; margin: 0; font-size: 28px;">&#127881; You're Invited!</h1>
        <p style="color: white; margin: 10px 0 0 0; font-size: 16px;">AI Nexus is now available</p>
    </div>

    <div style="margin-bottom: 30px;">
        <h3 style="color: #333; margin-bottom: 15px;">Hi {{.FirstName}},</h3>
        <p>The wait is over! AI Nexus is now live and you have exclusive early access.</p>
        <p>As one of our early supporters, you get:</p>
        <ul style="padding-left: 20px;">
            <li style="margin-bottom: 10px;">Free access to premium AI models for 30 days</li>
            <li style="margin-bottom: 10px;">Priority support and community access</li>
            <li style="margin-bottom: 10px;">Exclusive features not available to the public</li>
            <li style="margin-bottom: 10px;">Early access to new AI models and tools</li>
        </ul>
    </div>

    <div style="text-align: center; margin: 30px 0;">
        <a href="https://ainexus.com/register?token=early_access" style="background: #22c55e; color: white; padding: 15px 30px; text-decoration: none; border-radius: 8px; display: inline-block; font-size: 18px; font-weight: bold;">Get Started Now</a>
    </div>

    <div style="background: #f8f9fa; padding: 20px; border-radius: 10px; margin-bottom: 30px;">
        <p style="margin: 0; font-size: 14px; color: #666;"><strong>Note:</strong> This invitation expires in 7 days. Don't miss out on your early access!</p>
    </div>

    <div style="text-align: center; color: #666; font-size: 14px; border-top: 1px solid #eee; padding-top: 20px;">
        <p>AI Nexus - The Decentralized AI Marketplace</p>
        <p>
            <a href="https://ainexus.com" style="color: #22c55e;">Visit our website</a> |
            <a href="mailto:support@ainexus.com" style="color: #22c55e;">Contact support</a>
        </p>
    </div>
</body>
</html>`))
